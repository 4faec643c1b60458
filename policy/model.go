package policy

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// linearPolicy is a softmax-linear mapping from embedding vectors to a
// probability distribution over action indices. Small enough to train in
// pure Go and serialize as plain JSON.
type linearPolicy struct {
	weights [][]float64 // actions x dim
	bias    []float64   // actions
	dim     int
}

func newLinearPolicy(actions, dim int) *linearPolicy {
	w := make([][]float64, actions)
	for i := range w {
		w[i] = make([]float64, dim)
	}
	return &linearPolicy{weights: w, bias: make([]float64, actions), dim: dim}
}

func (p *linearPolicy) logits(x []float64) []float64 {
	out := make([]float64, len(p.weights))
	for i, w := range p.weights {
		out[i] = floats.Dot(w, x) + p.bias[i]
	}
	return out
}

// probs returns softmax(logits(x)), stabilized against overflow by shifting
// by the max logit.
func (p *linearPolicy) probs(x []float64) []float64 {
	logits := p.logits(x)
	max := floats.Max(logits)
	for i, l := range logits {
		logits[i] = math.Exp(l - max)
	}
	sum := floats.Sum(logits)
	floats.Scale(1/sum, logits)
	return logits
}

// greedy returns the index of the most likely action (deterministic argmax,
// not sampled). Used at prediction time.
func (p *linearPolicy) greedy(x []float64) int {
	return argmax(p.logits(x))
}

func argmax(v []float64) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best
}

// sample draws an action index from the distribution. Used during training
// so updates stay on-policy.
func (p *linearPolicy) sample(rng *rand.Rand, probs []float64) int {
	r := rng.Float64()
	acc := 0.0
	for i, pr := range probs {
		acc += pr
		if r < acc {
			return i
		}
	}
	return len(probs) - 1
}

// update applies one REINFORCE step for a single-decision episode:
// the gradient of log-prob for the chosen action is (onehot(a) - probs)
// outer x, scaled by reward and learning rate.
func (p *linearPolicy) update(x []float64, action int, probs []float64, reward, lr float64) {
	for k := range p.weights {
		indicator := 0.0
		if k == action {
			indicator = 1.0
		}
		coef := lr * reward * (indicator - probs[k])
		floats.AddScaled(p.weights[k], coef, x)
		p.bias[k] += coef
	}
}
