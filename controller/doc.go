// Package controller implements the button demo's animation coordinator.
//
// A [Coordinator] manages three kinds of buttons. Action selectors choose
// which effect the animated node will perform (scale, random sprite, jump,
// spin, fade, or all five in order). Playback controls play the selected
// effect, pause or resume every running animation, and reset the animated
// node to the state captured on activation. Anything else it manages
// dismisses the playback panel.
//
//	c, err := controller.New(layout, scene.Tweens(), controller.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	c.Activate()
//	defer c.Deactivate()
//	scene.SetUpdateFunc(c.Update)
//
// Config files are YAML; see [Config] for the keys and [ConfigWatcher] for
// reloading them while the demo runs.
package controller
