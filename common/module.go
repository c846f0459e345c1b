package common

type Module string

const (
	ModuleAnjoli Module = "anjoli"
)

func (m Module) String() string {
	return string(m)
}
