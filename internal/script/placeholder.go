package script

// The script endpoint's contract with host sites is that it never
// returns a failure status that could break a <script> tag. Missing,
// inactive, and broken projects all degrade to one of these inert
// bodies served with a success status.

// NotFound is served for unknown project identifiers and for any
// internal failure while resolving a project.
const NotFound = `/* splitpixel: no experiment is configured for this project id. */
/* Check the embed snippet, or create the project on your splitpixel server. */
`

// Inactive is served when the project exists but is switched off.
const Inactive = `/* splitpixel: this experiment is currently inactive. */
/* Activate the project on your splitpixel server to resume assignment. */
`
