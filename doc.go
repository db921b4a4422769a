/*
Package tinyrender holds the geometric primitives of a small software
rasterizer: integer and float vectors, vertices with optional texture
coordinates, triangles and BGR colors.

Rasterization lives in package raster, the TGA codec in package tga and model
loading plus the render pipeline in package render.
*/
package tinyrender
