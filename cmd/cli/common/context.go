package common

import (
	"github.com/jpnorenam/cpuid-snap/pkg/cpuid"
	"github.com/jpnorenam/cpuid-snap/pkg/storage"
)

type Context struct {
	Verbose    bool
	ConfigPath string
	Detector   *cpuid.Detector
	Cache      storage.Cache
	Config     storage.Config
}
