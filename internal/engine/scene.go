package engine

// Scene is a flat container for the lane's objects: the ball and the rack.
// There is no hierarchy and no implicit enumeration; collision partners come
// from an explicit registry, the scene only answers name and tag lookups and
// drives the component lifecycle.
type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject detaches g from the scene. Removing an object that was
// never added is a no-op.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			return
		}
	}
}

// Clear drops every object at once; re-racking rebuilds from empty rather
// than removing one by one.
func (s *Scene) Clear() {
	s.GameObjects = s.GameObjects[:0]
}

// FindByName returns the first object with the given name, or nil.
func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// FindByTag returns every object carrying the tag.
func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

// Start runs component startup; each object starts at most once even if the
// scene is started again after adding more objects.
func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

// Update ticks per-frame component logic. Fixed-step simulation does not run
// here; inactive objects skip themselves.
func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
