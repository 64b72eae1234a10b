package cmd

import "strings"

// envKey converts a viper key to its environment suffix, e.g.
// "llm.azure.api_key" -> "LLM_AZURE_API_KEY".
func envKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
