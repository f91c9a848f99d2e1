// Package panels provides a retained-mode layout engine for a tree of boxes.
//
// Every element embeds Node and takes part in a two-pass protocol: Measure
// computes a desired size top-down under a size constraint, then Arrange
// positions each element inside an absolute rectangle. Results are cached
// behind dirty flags, so a pass after a property change only revisits the
// elements the change can affect.
//
// Containers cover the common sizing policies: StackPanel, DockPanel,
// WrapPanel, UniformGrid, Canvas and Grid, plus ScrollViewer, the Border,
// Card and Button decorators, and the TextBlock and Box leaves. A Host owns
// the root element and drives passes for a renderer.
//
//	root := panels.NewDockPanel()
//	header := panels.NewTextBlock("Title")
//	panels.SetDock(header, panels.DockTop)
//	root.Add(header, panels.NewBox())
//
//	host, err := panels.NewHost(root)
//	if err != nil {
//		return err
//	}
//	host.Layout(panels.NewSize(80, 24))
package panels
