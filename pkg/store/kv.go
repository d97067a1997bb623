package store

import (
	"github.com/peterbourgon/diskv/v3"
)

// Supported backend names for Config.Backend.
const (
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// KV is the synchronous key-value surface month records persist through.
// Get reports absence with a false second value; Set overwrites the whole
// value for a key.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// NewDiskv returns a KV writing one file per month key under basePath.
func NewDiskv(basePath string) KV {
	return &diskvKV{d: diskv.New(diskv.Options{
		BasePath: basePath,
		Transform: func(string) []string {
			return []string{}
		},
		CacheSizeMax: 1024 * 1024, // 1MB
	})}
}

type diskvKV struct {
	d *diskv.Diskv
}

func (k *diskvKV) Get(key string) (string, bool) {
	val, err := k.d.Read(key)
	if err != nil {
		return "", false
	}
	return string(val), true
}

func (k *diskvKV) Set(key, value string) error {
	return k.d.Write(key, []byte(value))
}

// NewMemory returns an in-process KV for tests and ephemeral sessions.
func NewMemory() KV {
	return &memoryKV{values: make(map[string]string)}
}

type memoryKV struct {
	values map[string]string
}

func (k *memoryKV) Get(key string) (string, bool) {
	val, ok := k.values[key]
	return val, ok
}

func (k *memoryKV) Set(key, value string) error {
	k.values[key] = value
	return nil
}
