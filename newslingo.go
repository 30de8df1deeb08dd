// Package newslingo turns an English news article into study material for
// Thai learners: the article's main text is fetched and cleaned, then a
// one-paragraph Thai summary and a five-word vocabulary table (with example
// sentences quoted from the article) are generated via the Gemini API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, goquery/, trafilatura/);
// orchestration lives in pipeline/.
package newslingo
