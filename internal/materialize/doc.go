// Package materialize turns a validated project.Spec into a project on disk.
// Materializer.Run drives the fixed sequence of steps: scaffold the base
// project with the package manager, install missing dependencies, write build
// configs, create the source skeleton, instantiate template files and patch
// package.json. The first error aborts the run; nothing is rolled back.
package materialize
