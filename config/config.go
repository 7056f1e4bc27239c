package config

import (
	"os"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

type (
	VellumConfig struct {
		FileSystem FilesystemConfig `yaml:"fileSystem"`
		Server     ServerConfig     `yaml:"server"`
		Database   DatabaseConfig   `yaml:"database"`
		Auth       AuthConfig       `yaml:"auth"`
	}

	FilesystemConfig struct {
		Storage string `yaml:"storage"`
		Archive string `yaml:"archive"`
	}

	ServerConfig struct {
		Host string `yaml:"host"`
		Port uint   `yaml:"port"`
	}

	AuthConfig struct {
		EnableNative       bool     `yaml:"enableNative"`
		EnableOpenId       bool     `yaml:"enableOpenId"`
		OpenIdIssuer       string   `yaml:"openIdIssuer"`
		OpenIdClientId     string   `yaml:"openIdClientId"`
		OpenIdRedirectHost string   `yaml:"openIdRedirectHost"`
		OpenIdAdminGroups  []string `yaml:"openIdAdminGroups"`
	}

	DatabaseConfig struct {
		Host      string `yaml:"host"`
		User      string `yaml:"user"`
		Database  string `yaml:"database"`
		Port      uint   `yaml:"port"`
		LocalFile string `yaml:"localFile"`
	}
)

func Load(fileName string) *VellumConfig {
	config := defaultConfig()

	if configData, err := os.ReadFile(fileName); err != nil {
		log.Warn("Failed to load configuration file.", "path", fileName)
		data, err := yaml.Marshal(&config)
		err = os.WriteFile(fileName, data, 0755)
		if err != nil {
			log.Error("Failed to write default configuration file.", "path", fileName)
		}
	} else if err := yaml.Unmarshal(configData, &config); err != nil {
		log.Error("Failed to parse configuration file.", "error", err.Error())
	}

	return config
}

func defaultConfig() *VellumConfig {
	return &VellumConfig{
		FileSystem: FilesystemConfig{
			Storage: "./storage/",
			Archive: "./archive/",
		},
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 3000,
		},
		Database: DatabaseConfig{
			Host:      "127.0.0.1",
			User:      "vellum",
			Database:  "vellum",
			Port:      5432,
			LocalFile: "./vellum.db",
		},
		Auth: AuthConfig{
			EnableNative:      true,
			EnableOpenId:      false,
			OpenIdAdminGroups: []string{"vellum-admins"},
		},
	}
}
