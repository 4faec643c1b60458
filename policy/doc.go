// Package policy implements the learning half of the resolution loop: a
// discrete-action policy trained on the interaction log and queried as the
// last automatic fallback in the resolver chain.
//
// Training is an episodic bandit: each episode presents one logged state
// (embedded into a fixed-length vector), the policy samples an action, and
// the reward is +1 when the sampled action's text equals the logged action,
// -1 otherwise. A REINFORCE-style update nudges the softmax-linear policy
// toward reproducing the logged responses. Every episode terminates after a
// single decision; there is no multi-step state transition.
//
// The action vocabulary (distinct response strings, sorted, bound to stable
// integer indices) is persisted inside the snapshot and reused verbatim at
// prediction time, so training and inference can never desynchronize their
// index mappings. Snapshots are written atomically; a crash mid-save leaves
// the previous snapshot intact.
package policy
