package settings

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-home-io/imager/plugins/imager"
	"github.com/go-home-io/imager/plugins/imager/enums"
	"github.com/go-home-io/imager/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
system: logger
provider: console
---
system: sensor
provider: {{ env "IMAGER_TEST_SENSOR" }}
guid: SONYIMX2
config:
  lanes: 2
---
system: focuser
provider: ad5823
guid: NVCFOCUS
---
system: flash
provider: lm3565
guid: FLASH001
---
system: extension
provider: nvc
family: 20054
---
system: topology
provider: yaml
devices:
  - guid: SONYIMX2
    class: sensor
    position: rear
---
system: peripherals
provider: list
devices:
  - guid: SONYIMX2
    class: imager
---
system: unknown
provider: test
`

func writeConfig(t *testing.T, data string) (string, string) {
	dir, err := ioutil.TempDir("", "imager-settings")
	require.NoError(t, err)

	file := filepath.Join(dir, "imager.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte(data), 0600))
	return dir, file
}

// Tests full config parsing.
func TestLoadFull(t *testing.T) {
	require.NoError(t, os.Setenv("IMAGER_TEST_SENSOR", "imx219"))
	defer os.Unsetenv("IMAGER_TEST_SENSOR") // nolint: errcheck

	dir, file := writeConfig(t, fullConfig)
	defer os.RemoveAll(dir) // nolint: errcheck

	s, err := Load(&StartUpOptions{ConfigFile: file})
	require.NoError(t, err)
	defer s.Flush()

	drivers := s.Drivers()
	require.Equal(t, 1, len(drivers.Sensors))
	assert.Equal(t, "imx219", drivers.Sensors[0].Plugin)
	assert.Equal(t, imager.NewGUID("SONYIMX2"), drivers.Sensors[0].GUID)
	assert.Equal(t, 2, drivers.Sensors[0].Config["lanes"])

	require.Equal(t, 1, len(drivers.Focusers))
	assert.Equal(t, imager.FocuserSharesSensorGUID, drivers.Focusers[0].GUID)
	require.Equal(t, 1, len(drivers.Flashes))
	assert.Equal(t, "lm3565", drivers.Flashes[0].Plugin)
	require.Equal(t, 1, len(drivers.Extensions))
	assert.Equal(t, uint32(20054), drivers.Extensions[0].Family)

	layout, err := s.Topology().Layout()
	require.NoError(t, err)
	require.Equal(t, 1, len(layout))
	assert.Equal(t, enums.PositionRear, layout[0].Position)

	guids, err := s.Peripherals().Enumerate(enums.PeripheralImager, 10)
	require.NoError(t, err)
	assert.Equal(t, []imager.GUID{imager.NewGUID("SONYIMX2")}, guids)

	assert.NotNil(t, s.PluginLoader())
	assert.NotNil(t, s.Validator())
	assert.NotNil(t, s.PluginLogger(0, "test"))
}

// Tests sqlite peripherals.
func TestLoadSqlitePeripherals(t *testing.T) {
	dir, err := ioutil.TempDir("", "imager-settings")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	config := "system: peripherals\nprovider: sqlite\npath: " + filepath.Join(dir, "db", "p.db") + "\n"
	file := filepath.Join(dir, "imager.yaml")
	require.NoError(t, ioutil.WriteFile(file, []byte(config), 0600))

	s, err := Load(&StartUpOptions{ConfigFile: file})
	require.NoError(t, err)

	guids, err := s.Peripherals().Enumerate(enums.PeripheralImager, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, len(guids))

	s.Flush()
	_, err = s.Peripherals().Enumerate(enums.PeripheralImager, 10)
	assert.Error(t, err)
}

// Tests invalid records.
func TestLoadInvalid(t *testing.T) {
	data := []string{
		"system: sensor\nprovider: imx219\nguid: 3\n",
		"system: logger\nprovider: logrus\nformat: xml\n",
		"system: topology\nprovider: yaml\ndevices:\n  - class: sensor\n",
		"system: peripherals\nprovider: sqlite\n",
	}

	for _, v := range data {
		dir, file := writeConfig(t, v)
		_, err := Load(&StartUpOptions{ConfigFile: file})
		assert.IsType(t, &ErrInvalidRecord{}, err, v)
		os.RemoveAll(dir) // nolint: errcheck
	}
}

// Tests broken template.
func TestLoadBrokenTemplate(t *testing.T) {
	dir, file := writeConfig(t, "system: sensor\nprovider: {{ env }\n")
	defer os.RemoveAll(dir) // nolint: errcheck

	_, err := Load(&StartUpOptions{ConfigFile: file})
	assert.Error(t, err)
}

// Tests missing config files.
func TestLoadMissing(t *testing.T) {
	dir, err := ioutil.TempDir("", "imager-settings")
	require.NoError(t, err)
	defer os.RemoveAll(dir) // nolint: errcheck

	_, err = Load(&StartUpOptions{ConfigFile: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	utils.ConfigDir = dir
	defer func() { utils.ConfigDir = "" }()

	s, err := Load(&StartUpOptions{})
	require.NoError(t, err)
	defer s.Flush()

	assert.Equal(t, 0, len(s.Drivers().Sensors))

	layout, err := s.Topology().Layout()
	assert.NoError(t, err)
	assert.Equal(t, 0, len(layout))

	guids, err := s.Peripherals().Enumerate(enums.PeripheralImager, 10)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(guids))
}
