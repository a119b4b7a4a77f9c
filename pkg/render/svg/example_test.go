package svg_test

import (
	"fmt"

	"github.com/matzehuels/gridgen/pkg/grid"
	"github.com/matzehuels/gridgen/pkg/layout"
	"github.com/matzehuels/gridgen/pkg/render/svg"
)

func ExampleRender() {
	doc, _ := grid.Parse("o")

	cfg := layout.DefaultConfig()
	cfg.CellSize = 10
	l, _ := layout.Build(doc, cfg)

	out, _ := svg.Render(l, nil)
	fmt.Print(string(out))
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" viewBox="0.00 0.00 10.00 10.00" width="10.00" height="10.00">
	//   <circle class="circle" cx="5.00" cy="5.00" r="3.50" fill="#FF0000" stroke="#000000" stroke-width="1.00"/>
	//   <g class="grid" fill="none" stroke="#000000" stroke-width="1.00">
	//     <line x1="0.00" y1="0.00" x2="10.00" y2="0.00"/>
	//     <line x1="0.00" y1="10.00" x2="10.00" y2="10.00"/>
	//     <line x1="0.00" y1="0.00" x2="0.00" y2="10.00"/>
	//     <line x1="10.00" y1="0.00" x2="10.00" y2="10.00"/>
	//   </g>
	// </svg>
}
