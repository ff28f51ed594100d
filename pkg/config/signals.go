package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// SignalConfig holds the classifier keyword lists as versioned data so tests
// can enumerate them and deployments can override them from a file. The
// heuristics are best effort: false positives and negatives are expected.
type SignalConfig struct {
	// Complex-AI detection.
	AIStrong    []string `yaml:"ai_strong"`
	AIResearch  []string `yaml:"ai_research"`
	AIMarket    []string `yaml:"ai_market"`
	AIBroad     []string `yaml:"ai_broad"`
	AIBroadMin  int      `yaml:"ai_broad_min"`

	// IoT/hardware detection.
	IoTStrong     []string `yaml:"iot_strong"`
	IoTHardware   []string `yaml:"iot_hardware"`
	IoTMonitoring []string `yaml:"iot_monitoring"`
	IoTBroad      []string `yaml:"iot_broad"`
	IoTBroadMin   int      `yaml:"iot_broad_min"`

	// Finer project-type buckets for the generic loop's prompt
	// specialization. Evaluated in ProjectTypeOrder; first match wins.
	ProjectTypes     map[string][]string `yaml:"project_types"`
	ProjectTypeOrder []string            `yaml:"project_type_order"`
}

// loadSignalConfig reads signal configuration from a YAML file, falling back
// to the defaults when the file does not exist.
func loadSignalConfig(path string) (*SignalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSignalConfig(), nil
		}
		return nil, err
	}

	var cfg SignalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applySignalDefaults(&cfg)
	return &cfg, nil
}

// DefaultSignalConfig returns the built-in classifier keyword lists.
func DefaultSignalConfig() *SignalConfig {
	cfg := &SignalConfig{
		AIStrong:   []string{"ai agent", "ai system", "ai team", "multi-agent"},
		AIResearch: []string{"research", "analysis", "study", "identify", "search"},
		AIMarket:   []string{"market", "industry", "profit", "product", "business"},
		AIBroad: []string{
			"ai agent", "multi-agent", "market research", "ai system",
			"machine learning", "automated research", "ai team",
			"intelligent system", "data analysis", "market intelligence",
			"business intelligence", "opportunity identification",
			"trend analysis", "competitive intelligence", "search all projects",
			"study different industries", "identify problems", "solutions",
			"market potential", "daily idea", "unbeatable", "profit",
			"internet search", "analyze market", "product launch",
		},
		AIBroadMin: 5,

		IoTStrong:     []string{"iot", "esp32", "arduino", "sensor", "smart"},
		IoTHardware:   []string{"components", "pricing", "wiring", "setup"},
		IoTMonitoring: []string{"monitoring", "control", "tracking", "automation"},
		IoTBroad: []string{
			"iot", "esp32", "arduino", "raspberry pi", "sensor", "microcontroller",
			"smart home", "automation", "monitoring", "control system",
			"aquarium", "greenhouse", "weather station", "security system",
			"temperature sensor", "ph sensor", "ultrasonic", "relay",
			"wifi module", "bluetooth", "mqtt", "cloud integration",
		},
		IoTBroadMin: 3,

		ProjectTypes: map[string][]string{
			"iot_hardware": {"iot", "esp32", "arduino", "raspberry pi", "sensor", "embedded", "smart home"},
			"mobile_app":   {"mobile app", "ios", "android", "iphone", "flutter", "react native"},
			"web_platform": {"website", "web platform", "web-based", "web app", "saas", "dashboard", "portal"},
			"ai_ml":        {"ai", "machine learning", "chatbot", "neural network", "llm", "nlp", "computer vision"},
			"ecommerce":    {"e-commerce", "ecommerce", "marketplace", "online store", "shopify"},
		},
		ProjectTypeOrder: []string{"iot_hardware", "mobile_app", "web_platform", "ai_ml", "ecommerce"},
	}

	applySignalDefaults(cfg)
	return cfg
}

func applySignalDefaults(cfg *SignalConfig) {
	if cfg == nil {
		return
	}
	if cfg.AIBroadMin == 0 {
		cfg.AIBroadMin = 5
	}
	if cfg.IoTBroadMin == 0 {
		cfg.IoTBroadMin = 3
	}
	if len(cfg.ProjectTypeOrder) == 0 && len(cfg.ProjectTypes) > 0 {
		def := DefaultSignalConfig()
		cfg.ProjectTypeOrder = def.ProjectTypeOrder
	}
}
