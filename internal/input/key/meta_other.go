//go:build !darwin

package key

// Meta is the physical modifier the <META> pattern token stands for.
const Meta = ModCtrl
