package ppe

// Proof is a Groth-Sahai proof (pi,theta) for one pairing-product
// equation: pi lives in B2^2 and pairs against the commitment key's u
// side, theta lives in B1^2 and pairs against the v side.
type Proof struct {
	Pi    [2]B2
	Theta [2]B1
}

func zeroProof() Proof {
	return Proof{Pi: [2]B2{{}, {}}, Theta: [2]B1{{}, {}}}
}

// updateProof is the single routine underlying both Setup and Randomize.
//
// Given a base state (c, d, proof) that already satisfies the equation's
// verification identity under commitment key ck, fresh randomness
// matrices dR (m x 2) and dS (n x 2), and a fresh 2x2 randomization
// matrix t, it returns the state obtained by re-committing with
// c_i += dR_i.u and d_j += dS_j.v, together with the proof update that
// keeps the identity true. Setup is the special case where c, d are the
// raw witnesses (injected via iota1/iota2, zero randomness so far) and
// proof is the zero proof; Randomize is the general case starting from
// an existing proof system's own (c, d, proof). Either way dR, dS, t
// must be freshly sampled and never reused.
//
// The derivation: expanding the verifier's left-hand side at the new
// commitments c_i + dR_i.u and d_j + dS_j.v splits into the old
// left-hand side (which collapses to the old right-hand side by
// assumption) plus five residual cross terms bilinear in dR and/or dS.
// Four of those terms pin down unambiguous additions to pi and theta;
// the fifth, F_mat(u, dR^T.Gamma.dS, v), is ambiguous because
// F_mat(u,M,v) = F_vec(u,M.v) = F_vec(M^T.u,v) for any 2x2 M — t is the
// free parameter that redistributes it between pi and theta:
//
//	pi_k    += sum_l (Z_{k,l} - t_{l,k})*v_l,  Z = dR^T.Gamma.dS
//	theta_l += sum_k t_{l,k}*u_k
//
// t=0 recovers the pure-pi folding; any other t shifts the same value
// across the pi/theta split while preserving the identity, which is
// what makes t the sole extra source of proof randomness beyond dR, dS.
func updateProof(eq *Equation, ck *CommitmentKeys, c []B1, d []B2, proof Proof, dR, dS, t [][]*Scalar) ([]B1, []B2, Proof) {
	u := []B1{ck.U1, ck.U2}
	v := []B2{ck.V1, ck.V2}

	newC := make([]B1, len(c))
	for i := range c {
		newC[i] = c[i].Add(rowDotB1(dR[i], u))
	}
	newD := make([]B2, len(d))
	for j := range d {
		newD[j] = d[j].Add(rowDotB2(dS[j], v))
	}

	dRt := scalarMatTranspose(dR)                                // 2 x m
	dSt := scalarMatTranspose(dS)                                // 2 x n
	dRtGamma := scalarMatMul(dRt, eq.Gamma)                      // 2 x n
	z := scalarMatMul(dRtGamma, dS)                              // 2 x 2
	zAdj := scalarMatSub(z, scalarMatTranspose(t))               // 2 x 2
	dStGammaT := scalarMatMul(dSt, scalarMatTranspose(eq.Gamma)) // 2 x m

	piAdd := addB2Vec(
		mulMatVecB2(dRt, eq.iotaB()),
		addB2Vec(mulMatVecB2(dRtGamma, d), mulMatVecB2(zAdj, v)),
	)
	thetaAdd := addB1Vec(
		mulMatVecB1(dSt, eq.iotaA()),
		addB1Vec(mulMatVecB1(dStGammaT, c), mulMatVecB1(t, u)),
	)

	newProof := Proof{
		Pi:    [2]B2{proof.Pi[0].Add(piAdd[0]), proof.Pi[1].Add(piAdd[1])},
		Theta: [2]B1{proof.Theta[0].Add(thetaAdd[0]), proof.Theta[1].Add(thetaAdd[1])},
	}
	return newC, newD, newProof
}
