package utils

import (
	"github.com/common-nighthawk/go-figure"
)

func DrawBanner() {
	banner := figure.NewColorFigure("Cost Dashboard", "", "yellow", true)
	banner.Print()
}
