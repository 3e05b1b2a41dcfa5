package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	APIBaseURL   string `yaml:"api_base_url"`
	RealtimeURL  string `yaml:"realtime_url"` // ws:// endpoint pushing notification records
	SearchHost   string `yaml:"search_host"`
	ListenPort   string `yaml:"listen_port"`
	TemplatePath string `yaml:"template_path"`

	PostsPerPage   int `yaml:"posts_per_page"`
	ThreadsPerPage int `yaml:"threads_per_page"`
	PostMaxLen     int `yaml:"post_max_len"` // server-enforced bound, checked locally on markup-stripped text

	NotificationLimit        int           `yaml:"notification_limit"`
	NotificationPollInterval time.Duration `yaml:"notification_poll_interval"`

	LogLevel string `yaml:"log_level"`
	LogJSON  bool   `yaml:"log_json"`

	SecureCookies bool `yaml:"secure_cookies"`
}

type Private struct {
	SearchAPIKey string `yaml:"search_api_key"` // fallback when login response carries no search token
}

func (c *Config) SearchAPIKey() string {
	return c.private.SearchAPIKey
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.ListenPort == "" {
		c.Public.ListenPort = "8081"
	}
	if c.Public.TemplatePath == "" {
		c.Public.TemplatePath = "templates"
	}
	if c.Public.PostsPerPage == 0 {
		c.Public.PostsPerPage = 10
	}
	if c.Public.ThreadsPerPage == 0 {
		c.Public.ThreadsPerPage = 20
	}
	if c.Public.PostMaxLen == 0 {
		c.Public.PostMaxLen = 5000
	}
	if c.Public.NotificationLimit == 0 {
		c.Public.NotificationLimit = 20
	}
	if c.Public.NotificationPollInterval == 0 {
		c.Public.NotificationPollInterval = time.Minute
	}
}
