package frame

type ButtonAction string

const (
	ActionPost ButtonAction = "post"
	ActionLink ButtonAction = "link"
)

type Button struct {
	Label  string       `json:"label"`
	Action ButtonAction `json:"action"`
	Target string       `json:"target"`
}

type ImageOptions struct {
	AspectRatio string `json:"aspectRatio"`
}

// Frame is the view description handed to the frame renderer.
type Frame struct {
	Image        Node          `json:"image"`
	Buttons      []Button      `json:"buttons"`
	ImageOptions *ImageOptions `json:"imageOptions,omitempty"`
}

func Square() *ImageOptions {
	return &ImageOptions{AspectRatio: "1:1"}
}

func Post(label string, target string) Button {
	return Button{Label: label, Action: ActionPost, Target: target}
}

func Link(label string, target string) Button {
	return Button{Label: label, Action: ActionLink, Target: target}
}
