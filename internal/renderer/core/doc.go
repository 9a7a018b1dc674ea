// Package core provides the value types shared by the renderer packages:
// colours, styles, cells and screen rectangles.
package core
