package stream

import "github.com/matt-g-everett/staggertx/anim"

// Config for the transmitter process.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream   string `yaml:"stream"`
			Complete string `yaml:"complete"`
			Command  string `yaml:"command"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		FrameRate float64 `yaml:"frameRate"`
		Qos       int     `yaml:"qos"`
		Shimmer   bool    `yaml:"shimmer"`
	} `yaml:"stream"`
	Scene anim.SceneConfig `yaml:"scene"`
}
