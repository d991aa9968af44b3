package lifecycle

import "fmt"

type WindowConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
}

// Version is a major.minor.patch triple, converted to the graphics API's packed
// representation by the Graphics implementation.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	ExtensionNames []string
	LayerNames     []string
}

type Config struct {
	Window   WindowConfig
	Instance InstanceInfo
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Vulkan window",
			Width:  800,
			Height: 600,
		},
		Instance: InstanceInfo{
			ApplicationName:    "Hello Triangle",
			ApplicationVersion: Version{1, 0, 0},
			EngineName:         "No Engine",
			EngineVersion:      Version{1, 0, 0},
			APIVersion:         Version{1, 0, 0},
		},
	}
}
