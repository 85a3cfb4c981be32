// Package skeleton renders placeholder "skeleton loading" effects over view
// trees.
//
// While a loader is shown on a node, the node's real children are made
// fully transparent and two layers are installed:
//
//   - a [GradientSweep] below the children, which paints a five-stop
//     horizontal ramp whose bright band sweeps across the node forever;
//   - a [CutoutMask] above the children, which covers the node with an
//     opaque cover color and erases rounded-rect holes shaped like each
//     child, so the sweep shows through exactly where content will appear.
//
// A [Registry] tracks every node with an active loader, grouped by the call
// that showed them, and rebuilds all loaders with freshly resolved colors
// when the display appearance flips between light and dark.
//
// Basic usage:
//
//	reg, err := skeleton.NewRegistry(skeleton.DefaultConfig(), platform.Appearance)
//	if err != nil {
//	    return err
//	}
//	reg.ShowLoader(card)
//	// ... once data arrives
//	reg.HideLoader(card)
//
// The host drives animation with animation.StepTickers once per frame and
// runs Node.Layout on every layout pass so masks follow geometry changes.
package skeleton
