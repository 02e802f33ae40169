package httpcore

import (
	"reflect"
	"time"

	"github.com/corvid-labs/httpcore/request"
	"github.com/corvid-labs/httpcore/response"
)

// Config holds the knobs the ConnectionEngine and its collaborators read.
// NewConfig fills any zero-valued field of options with the package
// defaults via a reflect-based field merge.
type Config struct {
	Network string
	Address string

	MaxBodyBytes   int64
	ReadTimeout    time.Duration
	WriteChunkSize int

	ServerName         string
	DefaultContentType string

	Log Log
}

// NewConfig returns a Config with every zero-valued field of options
// replaced by its default. A nil options returns the all-defaults Config.
func NewConfig(options *Config) Config {
	defaults := Config{
		Network:            "tcp",
		Address:            ":8080",
		MaxBodyBytes:       request.DefaultMaxBodyBytes,
		ReadTimeout:        request.DefaultReadTimeout,
		WriteChunkSize:     response.DefaultWriteChunkSize,
		ServerName:         "httpcore",
		DefaultContentType: "text/html",
		Log:                NewLogger(),
	}
	if options == nil {
		return defaults
	}
	return mergeConfigs(defaults, *options)
}

// mergeConfigs overwrites a's fields with b's wherever b's field is
// non-zero, via reflection over every exported field — the same shape as
// server/config.go's mergeConfigs, generalised to this package's knobs.
func mergeConfigs(a, b Config) Config {
	va := reflect.ValueOf(&a).Elem()
	vb := reflect.ValueOf(&b).Elem()

	for i := 0; i < va.NumField(); i++ {
		vaField := va.Field(i)
		vbField := vb.Field(i)
		if vbField.Interface() != reflect.Zero(vbField.Type()).Interface() {
			vaField.Set(vbField)
		}
	}
	return a
}
