package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Parser struct {
		HeadWindowLines int `yaml:"head_window_lines" default:"5"`  // pre-header lines scanned for personal info
		NameScanLines   int `yaml:"name_scan_lines" default:"3"`    // head lines considered for name detection
		MaxHeaderLength int `yaml:"max_header_length" default:"50"` // lines longer than this are never headers
	} `yaml:"parser"`

	Predictor struct {
		Enabled             bool          `yaml:"enabled" default:"false"`
		Endpoint            string        `yaml:"endpoint"`
		Timeout             time.Duration `yaml:"timeout" default:"10s"`
		ConfidenceThreshold float64       `yaml:"confidence_threshold" default:"0.8"`
		RateLimit           int           `yaml:"rate_limit" default:"60"` // requests per minute
	} `yaml:"predictor"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1] // Remove ${ and }
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:] // Remove $
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match // Return original if env var not found
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Parser.HeadWindowLines = 5
	config.Parser.NameScanLines = 3
	config.Parser.MaxHeaderLength = 50

	config.Predictor.Timeout = 10 * time.Second
	config.Predictor.ConfidenceThreshold = 0.8
	config.Predictor.RateLimit = 60

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if enabled := os.Getenv("PREDICTOR_ENABLED"); enabled != "" {
		c.Predictor.Enabled = enabled == "true" || enabled == "1"
	}

	if endpoint := os.Getenv("PREDICTOR_ENDPOINT"); endpoint != "" {
		c.Predictor.Endpoint = endpoint
	}

	if timeout := os.Getenv("PREDICTOR_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Predictor.Timeout = d
		}
	}

	if threshold := os.Getenv("PREDICTOR_CONFIDENCE_THRESHOLD"); threshold != "" {
		if f, err := strconv.ParseFloat(threshold, 64); err == nil {
			c.Predictor.ConfidenceThreshold = f
		}
	}

	if rateLimit := os.Getenv("PREDICTOR_RATE_LIMIT"); rateLimit != "" {
		if n, err := strconv.Atoi(rateLimit); err == nil {
			c.Predictor.RateLimit = n
		}
	}

	if headWindow := os.Getenv("PARSER_HEAD_WINDOW_LINES"); headWindow != "" {
		if n, err := strconv.Atoi(headWindow); err == nil {
			c.Parser.HeadWindowLines = n
		}
	}
}
