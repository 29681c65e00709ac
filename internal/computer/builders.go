package computer

// GamingBuilder assembles a high-end gaming machine.
type GamingBuilder struct {
	c Computer
}

func NewGamingBuilder() *GamingBuilder { return &GamingBuilder{} }

func (b *GamingBuilder) SetCPU()            { b.c.CPU = "Intel Core i9 13900K" }
func (b *GamingBuilder) SetGPU()            { b.c.GPU = "NVIDIA RTX 4090" }
func (b *GamingBuilder) SetRAM()            { b.c.RAM = "32GB DDR5" }
func (b *GamingBuilder) SetStorage()        { b.c.Storage = "2TB NVMe SSD" }
func (b *GamingBuilder) SetPowerSupply()    { b.c.PowerSupply = "1000W Gold PSU" }
func (b *GamingBuilder) Computer() Computer { return b.c }

// OfficeBuilder assembles a modest office workstation.
type OfficeBuilder struct {
	c Computer
}

func NewOfficeBuilder() *OfficeBuilder { return &OfficeBuilder{} }

func (b *OfficeBuilder) SetCPU()            { b.c.CPU = "Intel Core i5 13400" }
func (b *OfficeBuilder) SetGPU()            { b.c.GPU = "Intel UHD Graphics 730" }
func (b *OfficeBuilder) SetRAM()            { b.c.RAM = "16GB DDR4" }
func (b *OfficeBuilder) SetStorage()        { b.c.Storage = "512GB SSD" }
func (b *OfficeBuilder) SetPowerSupply()    { b.c.PowerSupply = "450W Bronze PSU" }
func (b *OfficeBuilder) Computer() Computer { return b.c }
