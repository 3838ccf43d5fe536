package powershell

// Every script reads its parameters from the environment, see the env* constants.
// Failures are written on stderr as "<FullyQualifiedErrorId> (0x<HResult>): <message>" with exit code 1.

const (
	envHost      = "AE_HOST"
	envUser      = "AE_USER"
	envPassword  = "AE_PASSWORD"
	envStart     = "AE_START"
	envLogNames  = "AE_LOGNAMES"
	envLevels    = "AE_LEVELS"
	envLogName   = "AE_LOGNAME"
	envEntryType = "AE_ENTRYTYPE"
	envNewest    = "AE_NEWEST"
)

const preamble = `
$ErrorActionPreference = 'Stop'
$ProgressPreference = 'SilentlyContinue'
trap {
    [Console]::Error.WriteLine(('{0} (0x{1:X8}): {2}' -f $_.FullyQualifiedErrorId, $_.Exception.HResult, $_.Exception.Message))
    exit 1
}
$target = @{ ComputerName = $env:AE_HOST }
if ($env:AE_USER) {
    $secret = New-Object System.Security.SecureString
    if ($env:AE_PASSWORD) {
        $secret = ConvertTo-SecureString -String $env:AE_PASSWORD -AsPlainText -Force
    }
    $target.Credential = New-Object System.Management.Automation.PSCredential ($env:AE_USER, $secret)
}
`

const scriptListChannels = preamble + `
$logs = @(Get-WinEvent -ListLog * @target -ErrorAction SilentlyContinue -ErrorVariable listErrors)
if ($logs.Count -eq 0 -and $listErrors.Count -gt 0) {
    throw $listErrors[0]
}
$out = @($logs | ForEach-Object {
    [pscustomobject]@{
        LogName      = $_.LogName
        LogType      = $_.LogType.ToString()
        LogIsolation = $_.LogIsolation.ToString()
        RecordCount  = $_.RecordCount
    }
})
ConvertTo-Json -InputObject $out -Compress -Depth 2
`

const scriptQueryEvents = preamble + `
$filter = @{
    LogName   = @($env:AE_LOGNAMES -split '\n')
    Level     = @($env:AE_LEVELS -split ',' | ForEach-Object { [int]$_ })
    StartTime = [datetime]::Parse($env:AE_START, [Globalization.CultureInfo]::InvariantCulture, [Globalization.DateTimeStyles]::RoundtripKind)
}
$events = @(Get-WinEvent -FilterHashtable $filter @target)
$out = @($events | ForEach-Object {
    [pscustomobject]@{
        MachineName      = $_.MachineName
        TimeCreated      = $_.TimeCreated.ToUniversalTime().ToString('o')
        ProviderName     = $_.ProviderName
        LogName          = $_.LogName
        Id               = $_.Id
        LevelDisplayName = $_.LevelDisplayName
        Message          = $_.Message
    }
})
ConvertTo-Json -InputObject $out -Compress -Depth 2
`

// Get-EventLog has no -Credential parameter, a credential goes through Invoke-Command.
const scriptReadLegacy = preamble + `
$read = {
    param($logName, $entryType, $newest, $computerName)
    $params = @{ LogName = $logName; EntryType = $entryType; Newest = $newest }
    if ($computerName) { $params.ComputerName = $computerName }
    @(Get-EventLog @params) | ForEach-Object {
        [pscustomobject]@{
            MachineName   = $_.MachineName
            TimeGenerated = $_.TimeGenerated.ToUniversalTime().ToString('o')
            Source        = $_.Source
            EventID       = $_.EventID
            EntryType     = $_.EntryType.ToString()
            Message       = $_.Message
        }
    }
}
$newest = [int]$env:AE_NEWEST
if ($target.Credential) {
    $entries = @(Invoke-Command @target -ScriptBlock $read -ArgumentList $env:AE_LOGNAME, $env:AE_ENTRYTYPE, $newest, $null)
} else {
    $entries = @(& $read $env:AE_LOGNAME $env:AE_ENTRYTYPE $newest $env:AE_HOST)
}
$out = @($entries | Select-Object MachineName, TimeGenerated, Source, EventID, EntryType, Message)
ConvertTo-Json -InputObject $out -Compress -Depth 2
`
