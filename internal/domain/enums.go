package domain

// AIProvider identifies one of the supported LLM extraction providers.
type AIProvider string

const (
	ProviderGemini     AIProvider = "gemini"
	ProviderDeepseek   AIProvider = "deepseek"
	ProviderOpenRouter AIProvider = "openrouter"
)

// Valid reports whether p is one of the supported providers.
func (p AIProvider) Valid() bool {
	switch p {
	case ProviderGemini, ProviderDeepseek, ProviderOpenRouter:
		return true
	}
	return false
}

// Keys of the app_settings table. These mirror the get_*/set_* RPC pairs
// of the original store surface one-to-one.
const (
	SettingAIProvider         = "ai_provider"
	SettingGeminiAPIKey       = "gemini_api_key"
	SettingGeminiPrompt       = "gemini_prompt"
	SettingDeepseekAPIKey     = "deepseek_api_key"
	SettingDeepseekPrompt     = "deepseek_prompt"
	SettingOpenRouterAPIKey   = "openrouter_api_key"
	SettingOpenRouterPrompt   = "openrouter_prompt"
	SettingOpenRouterSiteURL  = "openrouter_site_url"
	SettingOpenRouterSiteName = "openrouter_site_name"
)
