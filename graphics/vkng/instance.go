// Package vkng creates Vulkan instances through vkngwrapper.
package vkng

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/vulkan-window/lifecycle"
)

var (
	ErrMissingExtension   = errors.New("required instance extension not available")
	ErrUnsupportedVersion = errors.New("unsupported vulkan api version")
)

var (
	_ lifecycle.Graphics = (*Graphics)(nil)
	_ lifecycle.Instance = (*Instance)(nil)
)

type Graphics struct {
	loadDriver func(procAddr unsafe.Pointer) (core1_0.GlobalDriver, error)
}

func New() *Graphics {
	return &Graphics{loadDriver: loadDriver}
}

// CreateInstance loads the global driver from procAddr, or from the system Vulkan
// library when procAddr is nil, and creates an instance described by info.
func (g *Graphics) CreateInstance(procAddr unsafe.Pointer, info lifecycle.InstanceInfo) (lifecycle.Instance, error) {
	globalDriver, err := g.loadDriver(procAddr)
	if err != nil {
		return nil, err
	}

	extensions, _, err := globalDriver.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate instance extensions")
	}

	available := make(map[string]bool, len(extensions))
	for name := range extensions {
		available[name] = true
	}

	createInfo, err := buildCreateInfo(info, available)
	if err != nil {
		return nil, err
	}

	instance, _, err := globalDriver.CreateInstance(nil, createInfo)
	if err != nil {
		return nil, errors.Wrap(err, "vkCreateInstance")
	}

	// vkDestroyInstance is itself loaded through the instance's proc table, so an
	// instance whose driver cannot be built cannot be released either.
	instanceDriver, err := globalDriver.BuildInstanceDriver(instance)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load instance driver")
	}

	return &Instance{driver: instanceDriver}, nil
}

func loadDriver(procAddr unsafe.Pointer) (core1_0.GlobalDriver, error) {
	if procAddr == nil {
		driver, err := core.CreateSystemDriver()
		return driver, errors.Wrap(err, "failed to load system vulkan driver")
	}

	driver, err := core.CreateDriverFromProcAddr(procAddr)
	return driver, errors.Wrap(err, "failed to load vulkan driver")
}

func buildCreateInfo(info lifecycle.InstanceInfo, available map[string]bool) (core1_0.InstanceCreateInfo, error) {
	apiVersion, err := apiVersion(info.APIVersion)
	if err != nil {
		return core1_0.InstanceCreateInfo{}, err
	}

	createInfo := core1_0.InstanceCreateInfo{
		ApplicationName:    info.ApplicationName,
		ApplicationVersion: version(info.ApplicationVersion),
		EngineName:         info.EngineName,
		EngineVersion:      version(info.EngineVersion),
		APIVersion:         apiVersion,
		EnabledLayerNames:  info.LayerNames,
	}

	for _, ext := range info.ExtensionNames {
		if !available[ext] {
			return core1_0.InstanceCreateInfo{}, errors.Mark(errors.Newf("createInstance: missing extension %s", ext), ErrMissingExtension)
		}
		createInfo.EnabledExtensionNames = append(createInfo.EnabledExtensionNames, ext)
	}

	if available[khr_portability_enumeration.ExtensionName] && !contains(createInfo.EnabledExtensionNames, khr_portability_enumeration.ExtensionName) {
		createInfo.EnabledExtensionNames = append(createInfo.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		createInfo.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	return createInfo, nil
}

func version(v lifecycle.Version) common.Version {
	return common.CreateVersion(v.Major, v.Minor, v.Patch)
}

func apiVersion(v lifecycle.Version) (common.APIVersion, error) {
	switch (lifecycle.Version{Major: v.Major, Minor: v.Minor}) {
	case lifecycle.Version{Major: 1, Minor: 0}:
		return common.Vulkan1_0, nil
	case lifecycle.Version{Major: 1, Minor: 1}:
		return common.Vulkan1_1, nil
	case lifecycle.Version{Major: 1, Minor: 2}:
		return common.Vulkan1_2, nil
	}
	return 0, errors.Wrapf(ErrUnsupportedVersion, "%s", v)
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

type Instance struct {
	driver core1_0.CoreInstanceDriver
}

func (i *Instance) Destroy() {
	if i.driver != nil {
		i.driver.DestroyInstance(nil)
		i.driver = nil
	}
}
