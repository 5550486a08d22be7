// Package workforce holds the four record kinds of the analytics store:
// employees, projects, collaboration edges and skill gaps. Records are
// written once by dataset initialization and never updated in place.
package workforce
