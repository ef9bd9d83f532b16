package render

// Package render turns fetched bytes into presentable frames: decoding,
// fit-to-window scaling that preserves the source aspect ratio, and
// letterboxed composition onto a black canvas matching the target surface.
