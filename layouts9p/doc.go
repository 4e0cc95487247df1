// Package layouts9p declares the worked-example head layouts from the 9P
// protocol message set, grounded on cx9p/messages.py: an envelope, a
// qid, a length-prefixed string, and a length-prefixed byte array. It is
// a consumer of package pair, exactly like any other third-party caller
// -- it imports nothing the core doesn't already export.
package layouts9p
