package scene

// DefaultScene is rendered when neither a file nor a scene name is given.
const DefaultScene = "shapes"

// DefaultRegistry returns a registry holding the built-in demo scenes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("shapes", shapesDemo())
	r.Register("move", moveDemo())
	r.Register("camera", cameraDemo())
	r.Register("colors", colorsDemo())
	r.Register("qr", qrDemo())
	return r
}

func secs(v float64) *float64 { return &v }

func shapesDemo() *File {
	zero := 0.0
	return &File{
		Version:    FileVersion,
		Background: "#1e1e1e",
		Objects: []ObjectSpec{
			{ID: "circle", Shape: "circle", X: -3, Radius: 1, Color: "#58c4dd", Opacity: &zero},
			{ID: "square", Shape: "square", Width: 2, Color: "#83c167", Opacity: &zero},
			{ID: "arrow", Shape: "arrow", From: []float64{2, -1}, To: []float64{4, 1}, Color: "#fc6255", Opacity: &zero},
		},
		Blocks: []BlockSpec{
			{Mode: "sequential", Duration: 1.5, Steps: []StepSpec{
				{Target: "circle", Op: "fade_in"},
				{Target: "square", Op: "fade_in"},
				{Target: "arrow", Op: "fade_in"},
			}},
			{Duration: 2, Steps: []StepSpec{
				{Target: "circle", Op: "move_to", Args: []float64{-3, 2}, Easing: "smooth"},
				{Target: "square", Op: "rotate", Args: []float64{180}, Degrees: true, Easing: "in_out_cubic"},
				{Target: "arrow", Op: "scale", Args: []float64{1.5}, Easing: "there_and_back"},
			}},
			{Duration: 0.5},
			{Duration: 1, Steps: []StepSpec{
				{Target: "circle", Op: "fade_out"},
				{Target: "square", Op: "fade_out"},
				{Target: "arrow", Op: "fade_out"},
			}},
		},
	}
}

func moveDemo() *File {
	return &File{
		Version: FileVersion,
		Objects: []ObjectSpec{
			{ID: "dot", Shape: "dot", X: -4, Radius: 0.2, Color: "#ffff00"},
		},
		Blocks: []BlockSpec{
			{Mode: "sequential", Duration: 3, Steps: []StepSpec{
				{Target: "dot", Op: "move_to", Args: []float64{0, 2}, Easing: "out_quad"},
				{Target: "dot", Op: "move_to", Args: []float64{4, 0}, Easing: "in_quad"},
				{Target: "dot", Op: "shift", Args: []float64{0, -2}, Easing: "out_bounce"},
			}},
		},
	}
}

func cameraDemo() *File {
	return &File{
		Version:    FileVersion,
		Background: "#101820",
		Objects: []ObjectSpec{
			{ID: "left", Shape: "circle", X: -4, Radius: 0.75, Fill: true, Color: "#fc6255"},
			{ID: "right", Shape: "square", X: 4, Width: 1.5, Fill: true, Color: "#58c4dd"},
		},
		Blocks: []BlockSpec{
			{Duration: 1.5, Steps: []StepSpec{
				{Target: "camera", Op: "move_to", Args: []float64{-4, 0}, Easing: "smooth"},
				{Target: "camera", Op: "scale", Args: []float64{2}, Easing: "smooth"},
			}},
			{Duration: 2, Steps: []StepSpec{
				{Target: "camera", Op: "move_to", Args: []float64{4, 0}, Easing: "in_out_sine"},
				{Target: "camera", Op: "rotate", Args: []float64{45}, Degrees: true, Easing: "in_out_sine", Duration: secs(1)},
			}},
			{Duration: 1, Steps: []StepSpec{
				{Target: "camera", Op: "move_to", Args: []float64{0, 0}},
				{Target: "camera", Op: "scale", Args: []float64{0.5}},
				{Target: "camera", Op: "rotate", Args: []float64{-45}, Degrees: true},
			}},
		},
	}
}

func colorsDemo() *File {
	return &File{
		Version: FileVersion,
		Objects: []ObjectSpec{
			{ID: "disc", Shape: "circle", Radius: 2, Fill: true, Color: "#fc6255"},
		},
		Blocks: []BlockSpec{
			{Mode: "sequential", Duration: 3, Steps: []StepSpec{
				{Target: "disc", Op: "color", Color: "#ffff00"},
				{Target: "disc", Op: "color", Color: "#83c167"},
				{Target: "disc", Op: "color", Color: "#58c4dd"},
			}},
		},
	}
}

func qrDemo() *File {
	zero := 0.0
	return &File{
		Version:    FileVersion,
		Background: "#ffffff",
		Objects: []ObjectSpec{
			{ID: "code", Shape: "qrcode", Content: "https://github.com/Hrithik0112/mini-manim", Width: 5, Color: "#000000", Opacity: &zero},
		},
		Blocks: []BlockSpec{
			{Duration: 1, Steps: []StepSpec{{Target: "code", Op: "fade_in", Easing: "in_quad"}}},
			{Duration: 1.5, Steps: []StepSpec{{Target: "code", Op: "rotate", Args: []float64{360}, Degrees: true, Easing: "in_out_back"}}},
		},
	}
}
