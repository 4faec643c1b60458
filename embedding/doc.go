// Package embedding provides core.Embedder implementations used to encode
// utterances into fixed-length vectors for policy training and prediction.
//
// Three backends are available:
//
//   - HashingEmbedder: deterministic local feature hashing. No network, no
//     model downloads, stable across runs and hosts. The default.
//   - OllamaEmbedder: embeddings from a local Ollama server.
//   - OpenAIEmbedder: embeddings from the OpenAI API.
//
// Whichever backend is chosen, training and prediction must use the same
// one: the policy snapshot records the dimensionality it was trained
// against and the predictor refuses mismatched vectors rather than mapping
// them incorrectly.
package embedding
