package settings

// Configuration is the optional on-disk configuration of the probe. Every
// field has a usable zero value, so a missing file simply yields defaults.
type Configuration struct {
	// LogFilePath is the diagnostic sink target; empty means standard error.
	LogFilePath string `json:"LogFilePath"`
	// DisableColors turns off lipgloss styling of the transcript.
	DisableColors bool `json:"DisableColors"`
	// HideBanner suppresses the startup lines in the transcript.
	HideBanner bool `json:"HideBanner"`
}

func defaultConfiguration() *Configuration {
	return &Configuration{}
}
