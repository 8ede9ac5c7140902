package core

import (
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

const (
	ConfigPath      = "/.config/otusub/"
	ConfigFilename  = "config.json"
	ConfigFilePerms = 0600
)

const ConfigEnv = "OTUSUB_CONFIG"

// JobDefaults holds per-profile defaults for job submission
// Layout for config file
/*
{
	"default": {
		"scheduler": "slurm",
		"walltime": "24:00:00",
		"threads": 4,
		"database_path": "/db/ref.fna",
		"similarity": "0.97"
	}
}
*/
type JobDefaults struct {
	Scheduler    string `json:"scheduler"`
	Walltime     string `json:"walltime"`
	Threads      int    `json:"threads"`
	DatabasePath string `json:"database_path"`
	Similarity   string `json:"similarity"`
}

type Config map[string]JobDefaults

func fileExist(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return info != nil && !info.IsDir()
}

// Build path for config file
// Set from environment or use backup
// Use current directory as last resort
func getConfigPath() string {
	if configPath := os.Getenv(ConfigEnv); len(configPath) > 0 {
		return configPath
	}
	backupPath := os.Getenv("HOME") + ConfigPath
	if err := os.MkdirAll(backupPath, 0744); err != nil {
		return ConfigFilename
	}
	return backupPath + ConfigFilename
}

func WriteConfig(config Config) error {
	configFile := getConfigPath()
	file, err := json.MarshalIndent(config, "", "	")
	if err != nil {
		return err
	}
	// Ensure config file uses proper permissions
	os.Chmod(configFile, ConfigFilePerms)
	return ioutil.WriteFile(configFile, file, ConfigFilePerms)
}

func ReadConfig() (Config, error) {
	filename := getConfigPath()
	if !fileExist(filename) {
		return Config{}, errors.New("core: cannot read otusub config")
	}
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "core: invalid otusub config")
	}
	if len(config) == 0 {
		return Config{}, errors.New("core: invalid otusub config")
	}
	return config, nil
}

// GetProfile returns the job defaults for a named profile. A missing
// config file yields zero defaults for the default profile.
func GetProfile(name string) (JobDefaults, error) {
	config, err := ReadConfig()
	if err != nil {
		if name == "default" {
			return JobDefaults{}, nil
		}
		return JobDefaults{}, err
	}
	if defaults, ok := config[name]; ok {
		return defaults, nil
	}
	return JobDefaults{}, errors.Errorf("core: profile %q does not exist", name)
}
