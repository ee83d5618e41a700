// Package elog parses Portage elog files into structured, linkified
// documents and classifies them by severity.
//
// # Overview
//
// An elog is the per-package build log Portage writes during a merge. Its
// body is divided into sections, each introduced by a header line of the
// form
//
//	MARKER: stage
//
// where MARKER is one of ERROR, WARN, LOG, INFO, or QA and stage names the
// ebuild phase (setup, compile, postinst, ...). This package provides two
// pure functions over such text:
//
//  1. Classify: return the single highest severity present in a log body.
//  2. Parse: run a line-by-line scanner over the body and build a Document
//     of header and body blocks, with ANSI escapes stripped and URLs, bug
//     references, and package atoms turned into hyperlinks.
//
// A Document can then be written out as HTML or handed to the terminal
// renderer in the ui package.
//
// # Header grammar
//
// A line counts as a section header only when the marker sits at the start
// of the line and the remainder after the first colon contains no further
// colon. "ERROR: postinst" opens an Error section;
// "ERROR: dev-python/foo-1.0::repo failed (prepare phase):" is body
// content. The same anchored rule applies to classification, so a log that
// merely quotes "ERROR:" mid-paragraph is not promoted to Error class.
//
// # Failure semantics
//
// Neither Classify nor Parse ever fails. Unrecognized lines are body
// content, logs without any marker classify as Info, and malformed input
// degrades to an ordinary (possibly empty) document. File access and byte
// decoding are the caller's concern; see the elogio package.
//
// # Concurrency
//
// All exported functions are pure and share only immutable package-level
// tables, so concurrent use requires no coordination.
package elog
