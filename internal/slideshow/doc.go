// Package slideshow selects images and writes slideshow playlists.
//
// A Spec describes one slideshow: where the playlist goes, the window
// size, and the inclusive creation-date and aspect-ratio ranges an
// image must satisfy to qualify. The Writer emits the
// "Slide Show Sequence v2" text format.
package slideshow
