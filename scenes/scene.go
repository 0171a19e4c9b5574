package scenes

import "github.com/yohamta/donburi/ecs"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

const layerDefault ecs.LayerID = 0
