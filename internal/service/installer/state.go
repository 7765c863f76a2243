package installer

// InstallState collects everything the wizard asks for. The env tags
// double as the .env serialization format, see SaveEnvStep.
type InstallState struct {
	GroqKey         string `env:"GROQ_API_KEY"`
	GeminiKey       string `env:"GEMINI_API_KEY"`
	PipelineVariant string `env:"DOODLE_PIPELINE_VARIANT"`
	EnableTelegram  bool   `env:"DOODLE_ENABLE_TELEGRAM"`
	TelegramToken   string `env:"TELEGRAM_TOKEN"`
	TelegramOwnerID string `env:"TELEGRAM_OWNER_ID"`
}

func NewInstallState() *InstallState {
	return &InstallState{}
}
