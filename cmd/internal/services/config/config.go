package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/worshipbuddy/schedulebuddy-cli/common/logger"
)

const (
	EnvLocal = "LOCAL"
	EnvDev   = "DEV"
	EnvProd  = "PROD"

	configDirName   = ".schedulebuddy"
	defaultFileName = "config.json"
)

var ErrCannotSaveConfig = eris.New("Critical config update error could not save")

func NewService(env string) (ServiceInterface, error) {
	service := &Service{
		Env:    env,
		Config: Config{},
	}

	err := service.getSetConfig()
	if err != nil {
		return nil, eris.Wrap(err, "failed to get config")
	}
	return service, nil
}

func (s *Service) GetConfig() *Config {
	return &s.Config
}

func (s *Service) Save() error {
	configFile, err := s.getConfigFileName()
	if err != nil {
		return eris.Wrap(err, "failed get config file name")
	}

	configJSON, err := json.Marshal(s.Config)
	if err != nil {
		return eris.Wrap(err, "failed to marshal config")
	}

	return os.WriteFile(configFile, configJSON, 0600)
}

// Clear wipes the persisted state, both in memory and on disk. Used on
// logout, account deletion, and demo-account startup cleanup.
func (s *Service) Clear() error {
	s.Config = Config{}

	configFile, err := s.getConfigFileName()
	if err != nil {
		return eris.Wrap(err, "failed get config file name")
	}

	err = os.Remove(configFile)
	if err != nil && !os.IsNotExist(err) {
		return eris.Wrap(err, "failed to remove config file")
	}
	return nil
}

//////////////////////////////////////////////////////////////////////////////////////////////////
// internal functions
//////////////////////////////////////////////////////////////////////////////////////////////////

func (s *Service) getSetConfig() error {
	var config Config

	configFile, err := s.getConfigFileName()
	if err != nil {
		return eris.Wrap(err, "failed get config file name")
	}

	file, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // this is ok, just create empty config
		}
		return eris.Wrap(err, "failed to read config file")
	}

	err = json.Unmarshal(file, &config)
	if err != nil {
		logger.Error(eris.Wrap(err, "failed to unmarshal config"))
		return err
	}

	s.Config = config
	return nil
}

func (s *Service) getConfigFileName() (string, error) {
	fileName := defaultFileName
	if s.Env == EnvDev || s.Env == EnvLocal {
		fileName = strings.ToLower(s.Env) + "-" + fileName
	}
	fullConfigDir, err := GetConfigDir()
	if err != nil {
		return "", eris.Wrap(err, "failed get config dir")
	}
	configFile := filepath.Join(fullConfigDir, fileName)
	return configFile, nil
}

// GetConfigDir returns ~/.schedulebuddy, creating it if needed.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", eris.Wrap(err, "failed to get user home dir")
	}
	configDir := filepath.Join(homeDir, configDirName)
	return configDir, os.MkdirAll(configDir, 0755)
}
