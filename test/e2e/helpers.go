package e2e

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	promdto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// FakeShell returns the absolute path of the script standing in for powershell.
func FakeShell() (string, error) {
	ret, err := filepath.Abs(filepath.Join("resources", "fake-powershell.sh"))
	if err != nil {
		return "", fmt.Errorf("failed to locate fake shell: %w", err)
	}

	return ret, nil
}

func HttpGet(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	return string(body), nil
}

// GetMetricFamily parses a prometheus text exposition and returns the family named name.
func GetMetricFamily(metrics string, name string) (*promdto.MetricFamily, error) {
	parser := expfmt.TextParser{}

	metricFamilies, err := parser.TextToMetricFamilies(strings.NewReader(metrics))
	if err != nil {
		return nil, fmt.Errorf("failed to parse metrics: %w", err)
	}

	metricFamily, ok := metricFamilies[name]
	if !ok || metricFamily == nil {
		return nil, errors.New("not found")
	}

	return metricFamily, nil
}

// CounterValue returns the value of the counter of family whose label has the given value.
func CounterValue(family *promdto.MetricFamily, label string, value string) (float64, error) {
	for _, metric := range family.Metric {
		for _, pair := range metric.Label {
			if pair.GetName() == label && pair.GetValue() == value && metric.Counter != nil {
				return metric.Counter.GetValue(), nil
			}
		}
	}

	return 0, fmt.Errorf("no counter with %s=%s", label, value)
}
