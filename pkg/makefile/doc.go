// Package makefile renders device records into Android make fragments.
//
// Three fragments are produced: the modules fragment (Android.mk) holding
// radio images and symlink modules, the product fragment declaring copied
// files, packages and partition properties, and the board fragment declaring
// A/B OTA partitions and the board info file.
//
// Every function here is pure: output depends only on the input record, the
// same input always yields byte-identical text, and nothing is validated.
// Optional inputs that are absent (nil) omit their block entirely. Blocks are
// separated by a blank line and the returned text has no trailing newline.
package makefile
