package setup

import (
	"os"
	"strconv"
)

// Config is read from the environment. GuardModelID selects the cheaper
// model tier used by the classifier and the auditor; the primary report
// generator is configured elsewhere.
type Config struct {
	Provider     string
	AWSRegion    string
	GuardModelID string
	OpenAIKey    string

	RulesPath string

	StateBackend  string
	StatePath     string
	RedisAddr     string
	RedisPassword string
	RedisStateKey string

	LogLevel string
}

func LoadConfig() *Config {
	return &Config{
		Provider:      getEnv("TRACKGUARD_LLM_PROVIDER", "bedrock"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		GuardModelID:  getEnv("TRACKGUARD_GUARD_MODEL_ID", ""),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		RulesPath:     getEnv("TRACKGUARD_RULES_PATH", ""),
		StateBackend:  getEnv("TRACKGUARD_STATE_BACKEND", "file"),
		StatePath:     getEnv("TRACKGUARD_STATE_PATH", "validation_state.json"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisStateKey: getEnv("TRACKGUARD_REDIS_STATE_KEY", "trackguard:validation_state"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
