// Package actions provides the high-level logic behind the pushit command.
//
// PushAction runs the whole pipeline: status preflight, message resolution,
// stage, commit, branch resolution, and push. It stops at the first failing
// step.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Git, Splog, and Prompter
//   - Actions are stateless; the repository is only mutated through git.Runner
//   - Actions handle user interaction through the Prompter
package actions
