// Package hit2 provides resource methods for the HIT2 endpoints of the
// Nexon Open API: ocid lookup and character profile data.
package hit2
