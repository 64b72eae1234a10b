// Package prompt builds the chat prompts copygen sends to a language model.
//
// # Overview
//
// The package defines a closed set of [ContentType] constants, each
// representing one kind of marketing copy. Callers fill in a [Request] and
// call [Build] to receive a [Pair] of system and user prompts; [Pair.Messages]
// turns that into the []llm.Message slice any [llm.Provider] accepts.
//
// # Content types
//
//   - [TypeSlogan]   — slogans and taglines (uses tone)
//   - [TypeSocial]   — social media captions (uses audience, tone, platform)
//   - [TypeHashtags] — hashtag sets (uses platform)
//   - [TypeProduct]  — product descriptions (uses audience, tone)
//   - [TypeEmail]    — marketing emails with Subject/Body labels (uses audience, tone)
//
// # Custom prompts
//
// When [Request.CustomPrompt] is non-empty it bypasses the templates: the
// content type is not consulted and the prompt is forwarded unchanged.
//
// # Variation count
//
// [Build] rejects counts outside [MinVariations, MaxVariations]. Entry points
// clamp raw user input once with [ClampVariations]:
//
//	req.Variations = prompt.ClampVariations(raw)
//	pair, err := prompt.Build(req)
//	if err != nil {
//	    return err
//	}
//	resp, err := provider.Chat(ctx, pair.Messages(), chatOpts)
package prompt
