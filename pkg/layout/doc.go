// Package layout computes badge positions and name text placement on a
// badge sheet.
//
// # Overview
//
// A sheet is a US Letter page (612×792 points) holding a fixed 4×3 grid of
// square badges, 189.36 points (2.63") on a side. The grid matches
// pre-cut badge stock, so every constant here is fixed:
//
//	x = LeftPadding   + col * (BadgeSize + XGap)
//	y = BottomPadding + row * (BadgeSize + YGap)
//
// Coordinates are PDF points with the origin at the bottom-left of the page.
// Row 0 is the bottom row and rows grow upward; column 0 is the left column.
// [CellOrigin] returns the bottom-left corner of a badge.
//
// # Text Fitting
//
// [Fit] finds the largest whole font size at or below a start size whose
// measured width stays within a limit. It never goes below a minimum size,
// so a name that cannot fit is clamped rather than shrunk to nothing.
//
// # Names and Pronouns
//
// A [Placer] splits a full name into a first line (first word) and a second
// line (the remaining words), fits each line against the name width and
// stacks the lines downward from the name band near the top of the badge.
// Each following line starts at 80% of the previous fitted size. Lines are
// drawn three times, offset gray and black under the ink color, to give the
// lettering an engraved look.
//
// Pronouns are wrapped in parentheses and centered 24 points below the last
// name baseline.
//
// All measuring and drawing goes through the [Measurer] and [Canvas]
// interfaces, so layout decisions can be computed and tested without a PDF.
package layout
