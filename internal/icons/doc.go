package icons

// Package icons loads PNG icon assets from a directory picked once per screen,
// matching the display pixel ratio against the scale factors an icon set ships
// with. Icons are requested by id ("name" or "name?color"); the optional color
// repaints every visible pixel while keeping the alpha channel.
