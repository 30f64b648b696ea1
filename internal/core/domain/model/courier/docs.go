// Package courier contains the courier identity used for claim authorization.
//
// The dispatch core does not track courier movement or capacity; it only needs
// to know who a courier is and whether they are allowed to claim offers. A
// blocked courier keeps their history but cannot claim anything new.
package courier
