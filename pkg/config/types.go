package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Storage     StorageConfig     `mapstructure:"storage"`
	GenAI       GenAIConfig       `mapstructure:"genai"`
	Vision      VisionConfig      `mapstructure:"vision"`
	Workflow    WorkflowConfig    `mapstructure:"workflow"`
	Recognition RecognitionConfig `mapstructure:"recognition"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Security    SecurityConfig    `mapstructure:"security"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	Backend string   `mapstructure:"backend"` // s3 | filesystem
	BaseDir string   `mapstructure:"base_dir"`
	BaseURL string   `mapstructure:"base_url"`
	S3      S3Config `mapstructure:"s3"`
}

// S3Config contains S3-compatible storage settings
type S3Config struct {
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

// GenAIConfig contains hosted generative model settings
type GenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// VisionConfig contains the face/element detection endpoint settings
type VisionConfig struct {
	FaceDetectURL    string        `mapstructure:"face_detect_url"`
	FaceIdentifyURL  string        `mapstructure:"face_identify_url"`
	ElementDetectURL string        `mapstructure:"element_detect_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// WorkflowConfig contains workflow session settings
type WorkflowConfig struct {
	// Delay between items during a process-all OCR pass. The pause is
	// for operator legibility, not correctness.
	ProcessAllDelay      time.Duration `mapstructure:"process_all_delay"`
	SessionTTL           time.Duration `mapstructure:"session_ttl"`
	ClassifyDefaultLabel string        `mapstructure:"classify_default_label"`
}

// RecognitionConfig contains facial-recognition review settings
type RecognitionConfig struct {
	// When true, approving a face whose assigned name matches no person
	// record creates the person instead of dropping the assignment.
	CreateMissingPeople bool `mapstructure:"create_missing_people"`
}

// AuthConfig contains authentication settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS      bool     `mapstructure:"enable_cors"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	MaxRequestBytes int64    `mapstructure:"max_request_bytes"`
	// UploadMaxBytes caps multipart media uploads separately from the
	// JSON body limit
	UploadMaxBytes int64 `mapstructure:"upload_max_bytes"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
