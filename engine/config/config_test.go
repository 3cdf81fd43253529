package config

import (
	"testing"

	"github.com/bmizerany/assert"
	"github.com/xiaonanln/go-lzw/engine/lzlog"
)

func init() {
	SetConfigFile("../../golzw.ini.sample")
}

func TestLoad(t *testing.T) {
	config := Get()
	lzlog.Debugf("golzw config: \n%s", DumpPretty(config))
	if config == nil {
		t.FailNow()
	}
	if config.Compress.Format == "" {
		t.Errorf("compress format not found")
	}
	if config.Log.LogLevel == "" {
		t.Errorf("log level not found")
	}
}

func TestReload(t *testing.T) {
	Get()
	config := Reload()
	lzlog.Debugf("golzw config: \n%s", DumpPretty(config))
}

func TestGetCompress(t *testing.T) {
	cc := GetCompress()
	assert.Equal(t, "lzw", cc.Format)
}

func TestGetLog(t *testing.T) {
	lc := GetLog()
	assert.Equal(t, "info", lc.LogLevel)
	assert.Equal(t, true, lc.LogStderr)
}

func TestUseDefaults(t *testing.T) {
	UseDefaults()
	defer Reload()
	assert.Equal(t, "lzw", GetCompress().Format)
	assert.Equal(t, "info", GetLog().LogLevel)
}
