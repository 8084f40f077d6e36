package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingModule struct {
	name     string
	priority int
	order    *[]string
	err      error
}

func (m *recordingModule) Name() string  { return m.name }
func (m *recordingModule) Priority() int { return m.priority }
func (m *recordingModule) Init(*ModuleContext) error {
	*m.order = append(*m.order, m.name)
	return m.err
}

func TestInitModules_Order(t *testing.T) {
	saved := moduleRegistry
	moduleRegistry = make(map[string]Module)
	defer func() { moduleRegistry = saved }()

	var order []string
	Register(&recordingModule{name: "feed", priority: 20, order: &order})
	Register(&recordingModule{name: "auth", priority: 1, order: &order})
	Register(&recordingModule{name: "profile", priority: 10, order: &order})
	Register(&recordingModule{name: "follow", priority: 10, order: &order})

	assert.NoError(t, InitModules(&ModuleContext{}))
	assert.Equal(t, []string{"auth", "follow", "profile", "feed"}, order)
}

func TestInitModules_StopsOnError(t *testing.T) {
	saved := moduleRegistry
	moduleRegistry = make(map[string]Module)
	defer func() { moduleRegistry = saved }()

	var order []string
	boom := errors.New("boom")
	Register(&recordingModule{name: "auth", priority: 1, order: &order, err: boom})
	Register(&recordingModule{name: "feed", priority: 20, order: &order})

	err := InitModules(&ModuleContext{})

	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "init module auth: boom")
	assert.Equal(t, []string{"auth"}, order)
	assert.Len(t, GetModules(), 2)
}
