package config

import "math"

// Default returns the stock village: the house layout, camera, light and particle values
// the scene was designed around.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:     "village",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Debug: DebugConfig{
			ShowVillager: true,
		},
		Log: LogConfig{
			File:       "logs/village.log",
			MaxSizeMB:  50,
			MaxBackups: 3,
			ConsoleMax: 200,
		},
		Camera: CameraConfig{
			Alpha:          math.Pi / 4,
			Beta:           math.Pi / 4,
			Radius:         50,
			Fovy:           45,
			UpperBetaLimit: math.Pi / 2.2,
			OrbitSpeed:     0.005,
			ZoomSpeed:      2,

			FollowHeightOffset: 8,
			FollowRadius:       1,
			FollowAcceleration: 0.005,
			FollowMaxSpeed:     10,

			VillagerRadius: 0.75,
			VillagerBeta:   math.Pi / 3,
			VillagerHeight: 0.3,
		},
		Light: LightConfig{
			Position:  [3]float32{10, 8, 10},
			Intensity: 0.3,
		},
		Villager: VillagerConfig{
			Position:     [3]float64{5, 0.05, 5},
			Min:          [3]float64{0, 0, -10},
			Max:          [3]float64{2, 2, 10},
			Speed:        50,
			BaseStep:     0.0005,
			RotationRate: 0.001,
			Move:         true,
			Height:       0.9,
		},
		Houses: HousesConfig{
			Spacing:    2,
			Placements: defaultPlacements(),
		},
		Markers: []MarkerConfig{
			{Name: "red box", Position: [3]float32{5, 0.25, 0}, Size: 0.25, Color: "#ff0000", Alpha: 0.5, Collider: true},
			{Name: "blue box", Position: [3]float32{0, 0.25, 5}, Size: 0.25, Color: "#0000ff", Alpha: 0.5},
		},
		Obstacles: ObstacleConfig{
			Step:  0.05,
			Nudge: 0.1,
		},
		Car: CarConfig{
			Position:   [3]float32{5, 0.17, 10},
			Scale:      1,
			StartZ:     20,
			EndZ:       -16,
			Frames:     300,
			FrameRate:  60,
			SpeedRatio: 0.4,

			WheelFrames:    60,
			WheelFrameRate: 30,
		},
		Fountain: FountainConfig{
			Position: [3]float32{5, 0, 5},
			Profile: [][2]float32{
				{0, 0}, {2, 0}, {0.3, 2}, {1, 3}, {1, 5}, {0, 3},
			},
			Color:           "#666600",
			Capacity:        2400,
			EmitRate:        2000,
			EmitBoxMin:      [3]float32{-0.1, 5, -0.1},
			EmitBoxMax:      [3]float32{0.1, 5, 0.1},
			MinLifeTime:     3,
			MaxLifeTime:     4,
			MinSize:         0.2,
			MaxSize:         0.5,
			MinEmitPower:    1,
			MaxEmitPower:    3,
			MinAngularSpeed: 2,
			MaxAngularSpeed: math.Pi,
			Direction1:      [3]float32{-2, 8, 2},
			Direction2:      [3]float32{2, 8, -2},
			Gravity:         [3]float32{0, -9.81, 0},
			Color1:          [4]float32{0.4, 0.4, 0, 1},
			Color2:          [4]float32{0.45, 0.6, 1, 0.5},
			ColorDead:       [4]float32{0, 0.2, 0, 0},
			UpdateSpeed:     0.025,
		},
		Music: MusicConfig{
			Path:           "assets/music/bgm.mp3",
			Volume:         1,
			VolumeStep:     0.005,
			ToggleInterval: 0.3,
		},
		Track: TrackConfig{
			Enabled: true,
			Points: [][3]float32{
				{2, 1, 2},
				{2, 1, -2},
				{2, 1.7320508075688772 * 2, 0},
				{2, 1, 2},
			},
			Step:   0.05,
			Radius: 0.125,
		},
		Terrain: TerrainConfig{
			GreenSize:    24,
			Size:         150,
			Subdivisions: 20,
			MaxHeight:    10,
			OffsetY:      -0.01,
			FlatRadius:   30,
			BlurRadius:   1.5,
			Seed:         1,
			SkyboxSize:   150,
		},
		UI: UIConfig{
			CSS: "assets/ui/village.css",
		},
	}
}

// defaultPlacements is the village layout: x and z are multiplied by HousesConfig.Spacing.
func defaultPlacements() []Placement {
	return []Placement{
		{Detached, -math.Pi / 16, -6.8, 2.5},
		{Semi, -math.Pi / 16, -4.5, 3},
		{Semi, -math.Pi / 16, -1.5, 4},
		{Semi, -math.Pi / 3, 1.5, 6},
		{Semi, 15 * math.Pi / 16, -6.4, -1.5},
		{Detached, 15 * math.Pi / 16, -4.1, -1},
		{Semi, 15 * math.Pi / 16, -2.1, -0.5},
		{Detached, 5 * math.Pi / 4, 0, -1},
		{Detached, math.Pi + math.Pi/2.5, 0.5, -3},
		{Semi, math.Pi + math.Pi/2.1, 0.75, -5},
		{Detached, math.Pi + math.Pi/2.25, 0.75, -7},
		{Semi, math.Pi / 1.9, 4.75, -1},
		{Detached, math.Pi / 1.95, 4.5, -3},
		{Semi, math.Pi / 1.9, 4.75, -5},
		{Detached, math.Pi / 1.9, 4.75, -7},
		{Semi, -math.Pi / 3, 5.25, 2},
		{Detached, -math.Pi / 3, 6, 4},
	}
}
