package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Ball")

	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj {
		t.Error("GameObject not added to scene")
	}
}

func TestSceneRemoveGameObject(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Ball")
	obj2 := NewGameObject("Pin")

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)

	scene.RemoveGameObject(obj1)

	if len(scene.GameObjects) != 1 {
		t.Errorf("Expected 1 GameObject after removal, got %d", len(scene.GameObjects))
	}
	if scene.GameObjects[0] != obj2 {
		t.Error("Wrong GameObject removed")
	}

	// Removing an absent object is a no-op
	scene.RemoveGameObject(obj1)
	if len(scene.GameObjects) != 1 {
		t.Error("Removing an absent object changed the scene")
	}
}

func TestSceneClear(t *testing.T) {
	scene := NewScene("Test")
	scene.AddGameObject(NewGameObject("Ball"))
	scene.AddGameObject(NewGameObject("Pin"))

	scene.Clear()

	if len(scene.GameObjects) != 0 {
		t.Errorf("Expected empty scene, got %d objects", len(scene.GameObjects))
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("HeadPin")

	scene.AddGameObject(obj)

	if found := scene.FindByName("HeadPin"); found != obj {
		t.Error("FindByName failed")
	}
	if notFound := scene.FindByName("DoesNotExist"); notFound != nil {
		t.Error("FindByName should return nil for non-existent name")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene := NewScene("Test")
	obj1 := NewGameObject("Pin1")
	obj2 := NewGameObject("Pin2")
	obj3 := NewGameObject("Ball")

	obj1.Tags = []string{"pin", "rack"}
	obj2.Tags = []string{"pin"}
	obj3.Tags = []string{"ball"}

	scene.AddGameObject(obj1)
	scene.AddGameObject(obj2)
	scene.AddGameObject(obj3)

	if pins := scene.FindByTag("pin"); len(pins) != 2 {
		t.Errorf("Expected 2 pins, got %d", len(pins))
	}
	if balls := scene.FindByTag("ball"); len(balls) != 1 {
		t.Errorf("Expected 1 ball, got %d", len(balls))
	}
	if notFound := scene.FindByTag("nonexistent"); len(notFound) != 0 {
		t.Error("FindByTag should return empty slice for non-existent tag")
	}
}

func TestSceneLifecycle(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Ball")
	c := &tickComponent{}
	obj.AddComponent(c)
	scene.AddGameObject(obj)

	scene.Start()
	scene.Start() // objects start at most once
	scene.Update(0.016)
	scene.Update(0.016)

	if c.starts != 1 {
		t.Errorf("Component started %d times, want 1", c.starts)
	}
	if c.ticks != 2 {
		t.Errorf("Component ticked %d times, want 2", c.ticks)
	}
}
