package computer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/creational/internal/core"
)

// recordingBuilder records the order in which steps run.
type recordingBuilder struct {
	steps []string
}

func (r *recordingBuilder) SetCPU()            { r.steps = append(r.steps, "cpu") }
func (r *recordingBuilder) SetGPU()            { r.steps = append(r.steps, "gpu") }
func (r *recordingBuilder) SetRAM()            { r.steps = append(r.steps, "ram") }
func (r *recordingBuilder) SetStorage()        { r.steps = append(r.steps, "storage") }
func (r *recordingBuilder) SetPowerSupply()    { r.steps = append(r.steps, "psu") }
func (r *recordingBuilder) Computer() Computer { return Computer{} }

func TestBuild_Gaming(t *testing.T) {
	c, err := Build("gaming")
	require.NoError(t, err)

	assert.Equal(t, Computer{
		CPU:         "Intel Core i9 13900K",
		GPU:         "NVIDIA RTX 4090",
		RAM:         "32GB DDR5",
		Storage:     "2TB NVMe SSD",
		PowerSupply: "1000W Gold PSU",
	}, c)
}

func TestBuild_Office(t *testing.T) {
	c, err := Build("office")
	require.NoError(t, err)

	assert.Equal(t, Computer{
		CPU:         "Intel Core i5 13400",
		GPU:         "Intel UHD Graphics 730",
		RAM:         "16GB DDR4",
		Storage:     "512GB SSD",
		PowerSupply: "450W Bronze PSU",
	}, c)

	for name, v := range map[string]string{
		"CPU": c.CPU, "GPU": c.GPU, "RAM": c.RAM, "Storage": c.Storage, "PowerSupply": c.PowerSupply,
	} {
		assert.NotEmpty(t, v, name)
	}
}

func TestBuild_CaseInsensitive(t *testing.T) {
	lower, err := Build("gaming")
	require.NoError(t, err)
	upper, err := Build("  GAMING ")
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestDirector_FixedOrder(t *testing.T) {
	r := &recordingBuilder{}
	Director{}.Construct(r)

	assert.Equal(t, []string{"cpu", "gpu", "ram", "storage", "psu"}, r.steps)
}

func TestDirector_Repeatable(t *testing.T) {
	for _, sel := range Types() {
		t.Run(sel, func(t *testing.T) {
			a, err := ForType(sel)
			require.NoError(t, err)
			b, err := ForType(sel)
			require.NoError(t, err)

			assert.Equal(t, Director{}.Construct(a), Director{}.Construct(b))
		})
	}
}

func TestBuilder_PartialLeavesDefaults(t *testing.T) {
	b := NewGamingBuilder()
	b.SetCPU()
	b.SetRAM()

	assert.Equal(t, Computer{CPU: "Intel Core i9 13900K", RAM: "32GB DDR5"}, b.Computer())
}

func TestBuilder_ResultIsCopy(t *testing.T) {
	b := NewOfficeBuilder()
	c := Director{}.Construct(b)
	c.CPU = "changed"

	assert.Equal(t, "Intel Core i5 13400", b.Computer().CPU)
}

func TestBuild_Unsupported(t *testing.T) {
	for _, sel := range []string{"", " ", "server", "Gam ing"} {
		t.Run(sel, func(t *testing.T) {
			c, err := Build(sel)
			require.Error(t, err)
			assert.True(t, core.IsUnsupportedSelection(err))
			assert.Equal(t, Computer{}, c)
		})
	}
}

func TestRun_PrintsConfiguration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), "gaming", &buf))

	assert.Equal(t, "Computer configuration:\n"+
		"  CPU: Intel Core i9 13900K\n"+
		"  GPU: NVIDIA RTX 4090\n"+
		"  RAM: 32GB DDR5\n"+
		"  Storage: 2TB NVMe SSD\n"+
		"  Power supply: 1000W Gold PSU\n", buf.String())
}

func TestComputerString(t *testing.T) {
	c := Computer{CPU: "a", GPU: "b", RAM: "c", Storage: "d", PowerSupply: "e"}
	assert.Equal(t, "CPU=a, GPU=b, RAM=c, Storage=d, PowerSupply=e", c.String())
}
