/*
Package bitmap loads images from disk and re-encodes them as BMP containers.

Any format with a registered decoder is accepted: BMP, PNG, JPEG and GIF, plus
uncompressed and BCn-compressed DDS textures. Formats are detected from the
file content, not the file name, so img.bmp may well hold a PNG.
*/
package bitmap
