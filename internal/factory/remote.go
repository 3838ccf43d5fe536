package factory

import (
	"github.com/happysysadm/get-administrativeevent/internal/config"
	"github.com/happysysadm/get-administrativeevent/internal/domain/entity"
	"github.com/happysysadm/get-administrativeevent/internal/domain/repo"
	"github.com/happysysadm/get-administrativeevent/internal/remote/powershell"
)

func CreateRemote(conf config.Config) repo.Remote {
	runner := powershell.NewProcRunner(conf.Remote.Shell)

	return powershell.NewClient(runner, conf.Query.Timeout)
}

// CreateCredential returns nil when no username is configured: the current identity is used.
func CreateCredential(conf config.Credential) *entity.Credential {
	if conf.Username == "" {
		return nil
	}

	return &entity.Credential{
		Username: conf.Username,
		Password: conf.Password,
	}
}
