package render_test

import (
	"fmt"

	"github.com/katalvlaran/theseus/lefthand"
	"github.com/katalvlaran/theseus/maze"
	"github.com/katalvlaran/theseus/render"
)

func ExampleRender() {
	g, _ := maze.ParseString("WWW\nWPD\nWTW\n")
	res, _ := lefthand.Walk(g)
	fmt.Print(render.Render(g, res.Trail()))
	// Output:
	// W W W
	// W * D
	// W T W
}
