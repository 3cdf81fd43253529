package config

import (
	"strings"

	"encoding/json"

	"sync"

	"path"

	"github.com/go-ini/ini"

	"github.com/xiaonanln/go-lzw/engine/consts"
	"github.com/xiaonanln/go-lzw/engine/lzlog"
)

const (
	_DEFAULT_CONFIG_FILE = "golzw.ini"
	_DEFAULT_LOG_LEVEL   = "info"
)

var (
	configFilePath = _DEFAULT_CONFIG_FILE
	golzwConfig    *GolzwConfig
	configLock     sync.Mutex
)

// CompressConfig defines fields of compress config
type CompressConfig struct {
	Format string
}

// LogConfig defines fields of log config
type LogConfig struct {
	LogFile   string
	LogStderr bool
	LogLevel  string
}

// GolzwConfig defines the total golzw config file structure
type GolzwConfig struct {
	Compress CompressConfig
	Log      LogConfig
}

// SetConfigFile sets the config file path (golzw.ini by default)
func SetConfigFile(f string) {
	configFilePath = f
}

// GetConfigDir returns the directory of golzw.ini
func GetConfigDir() string {
	dir, _ := path.Split(configFilePath)
	return dir
}

// GetConfigFilePath returns the config file path
func GetConfigFilePath() string {
	return configFilePath
}

// Get returns the total golzw config
func Get() *GolzwConfig {
	configLock.Lock()
	defer configLock.Unlock()
	if golzwConfig == nil {
		golzwConfig = readGolzwConfig()
	}
	return golzwConfig
}

// UseDefaults makes Get return built-in defaults without reading a config file
func UseDefaults() {
	configLock.Lock()
	defer configLock.Unlock()
	golzwConfig = &GolzwConfig{
		Compress: CompressConfig{Format: consts.DEFAULT_COMPRESS_FORMAT},
		Log:      LogConfig{LogStderr: true, LogLevel: _DEFAULT_LOG_LEVEL},
	}
}

// Reload forces golzw to reload the whole config
func Reload() *GolzwConfig {
	configLock.Lock()
	golzwConfig = nil
	configLock.Unlock()

	return Get()
}

// GetCompress returns the compress config
func GetCompress() *CompressConfig {
	return &Get().Compress
}

// GetLog returns the log config
func GetLog() *LogConfig {
	return &Get().Log
}

// DumpPretty format config to string in pretty format
func DumpPretty(cfg interface{}) string {
	s, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return err.Error()
	}
	return string(s)
}

func readGolzwConfig() *GolzwConfig {
	config := GolzwConfig{}
	lzlog.Infof("Using config file: %s", configFilePath)
	iniFile, err := ini.Load(configFilePath)
	checkConfigError(err, "")
	readCompressConfig(iniFile.Section("compress"), &config.Compress)
	readLogConfig(iniFile.Section("log"), &config.Log)

	for _, sec := range iniFile.Sections() {
		secName := strings.ToLower(sec.Name())
		if secName == "default" || secName == "compress" || secName == "log" {
			continue
		}
		lzlog.Panicf("unknown section: %s", sec.Name())
	}
	return &config
}

func readCompressConfig(sec *ini.Section, cc *CompressConfig) {
	cc.Format = consts.DEFAULT_COMPRESS_FORMAT
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "format" {
			cc.Format = key.MustString(cc.Format)
		} else {
			lzlog.Panicf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
}

func readLogConfig(sec *ini.Section, lc *LogConfig) {
	lc.LogFile = ""
	lc.LogStderr = true
	lc.LogLevel = _DEFAULT_LOG_LEVEL
	for _, key := range sec.Keys() {
		name := strings.ToLower(key.Name())
		if name == "log_file" {
			lc.LogFile = key.MustString(lc.LogFile)
		} else if name == "log_stderr" {
			lc.LogStderr = key.MustBool(lc.LogStderr)
		} else if name == "log_level" {
			lc.LogLevel = key.MustString(lc.LogLevel)
		} else {
			lzlog.Panicf("section %s has unknown key: %s", sec.Name(), key.Name())
		}
	}
}

func checkConfigError(err error, msg string) {
	if err != nil {
		if msg == "" {
			msg = err.Error()
		}
		lzlog.Panicf("read config error: %s", msg)
	}
}
