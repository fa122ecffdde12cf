package config

// ESPNConfig controls how we talk to the ESPN API hosts.
type ESPNConfig struct {
	SiteBaseURL string
	CoreBaseURL string
}

func loadESPN() ESPNConfig {
	return ESPNConfig{
		SiteBaseURL: envOrDefault(envEspnSiteBaseURL, ""),
		CoreBaseURL: envOrDefault(envEspnCoreBaseURL, ""),
	}
}
