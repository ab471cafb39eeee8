// Package i18n provides the report languages and the localized text used
// by the report package.
//
// All strings live in one catalog keyed by (Concept, Language). Shape kind
// names are concepts too, obtained with KindConcept, so adding a language
// or a kind only touches this package's catalog and the closed
// enumerations that feed it.
package i18n
